// Package command implements the device actions a YandexPlus hub offers to
// its users.
//
// # Commands
//
// A Command pairs a fixed, human readable name with one mutation of one
// device. Commands are grouped in families, one per device kind:
//
//	Socket         SocketOn, SocketOff
//	Light          LightOn, LightOff, LightIncrease, LightDecrease
//	FireAlarm      FireAlarmOn, FireAlarmOff
//	SecurityAlarm  SecurityAlarmOn, SecurityAlarmOff
//	CoffeeMachine  MakeLatte, MakeCappuccino, MakeEspresso, MakeRistretto,
//	               CoffeeMachineOff
//	MusicCenter    MusicCenterOn, MusicCenterOff, PlaySong
//
// The Command interface is sealed: only the types in this package implement
// it, so every command belongs to exactly one family.
//
// # Binding
//
// Commands are created unbound. A family holds a reference to the capability
// set it needs (SocketDevice, LightDevice, ...) and Bind picks the matching
// device out of a Devices provider:
//
//	cmd := command.NewLightIncrease(50)
//	cmd.Bind(devices)           // done by the hub when the command is added
//	res, err := cmd.Execute(ctx)
//
// Executing an unbound command returns ErrUnbound and touches nothing.
// Device outcomes such as "Machine is off!" are not errors; they are reported
// in Result.Output.
package command
