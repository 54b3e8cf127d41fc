// Package device implements the virtual appliances owned by a YandexPlus hub.
//
// # Device Kinds
//
// A hub owns exactly one device of each kind:
//
//	Set
//	├── Socket         on/off, defaults to on
//	├── Light          level 0..100, starts at 0
//	├── FireAlarm      on/off, defaults to off
//	├── SecurityAlarm  on/off, defaults to off
//	├── CoffeeMachine  regime Off/Latte/Cappuccino/Espresso/Ristretto
//	└── MusicCenter    power + selected song
//
// Devices are plain state holders. Operations that cannot do anything useful
// in the current state (brewing while the machine is off, playing with no song)
// report that through the returned value instead of an error:
//
//	brew := set.CoffeeMachine().MakeCoffee()
//	if !brew.Made {
//	    fmt.Println(brew.Message()) // "Machine is off!"
//	}
//
// All device types are safe for concurrent use.
package device
