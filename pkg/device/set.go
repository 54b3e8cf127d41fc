package device

// Set holds exactly one device of each kind. It is created once per hub and
// never grows or shrinks.
type Set struct {
	socket        *Socket
	light         *Light
	fireAlarm     *FireAlarm
	securityAlarm *SecurityAlarm
	coffeeMachine *CoffeeMachine
	musicCenter   *MusicCenter
}

// NewSet creates one device of every kind in its default state.
func NewSet() *Set {
	return &Set{
		socket:        NewSocket(),
		light:         NewLight(),
		fireAlarm:     NewFireAlarm(),
		securityAlarm: NewSecurityAlarm(),
		coffeeMachine: NewCoffeeMachine(),
		musicCenter:   NewMusicCenter(),
	}
}

// Socket returns the socket.
func (s *Set) Socket() *Socket { return s.socket }

// Light returns the light.
func (s *Set) Light() *Light { return s.light }

// FireAlarm returns the fire alarm.
func (s *Set) FireAlarm() *FireAlarm { return s.fireAlarm }

// SecurityAlarm returns the security alarm.
func (s *Set) SecurityAlarm() *SecurityAlarm { return s.securityAlarm }

// CoffeeMachine returns the coffee machine.
func (s *Set) CoffeeMachine() *CoffeeMachine { return s.coffeeMachine }

// MusicCenter returns the music center.
func (s *Set) MusicCenter() *MusicCenter { return s.musicCenter }

// Status is one line of a device status report.
type Status struct {
	Kind  Kind
	State string
}

// Status reports the state of every device in kind order.
func (s *Set) Status() []Status {
	return []Status{
		{Kind: KindSocket, State: s.socket.State()},
		{Kind: KindLight, State: s.light.State()},
		{Kind: KindFireAlarm, State: s.fireAlarm.State()},
		{Kind: KindSecurityAlarm, State: s.securityAlarm.State()},
		{Kind: KindCoffeeMachine, State: s.coffeeMachine.State()},
		{Kind: KindMusicCenter, State: s.musicCenter.State()},
	}
}
