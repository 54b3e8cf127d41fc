package device

// Kind identifies a device family.
type Kind uint8

// Device kinds, in the order a Set reports them.
const (
	KindSocket Kind = iota + 1
	KindLight
	KindFireAlarm
	KindSecurityAlarm
	KindCoffeeMachine
	KindMusicCenter
)

// Kinds returns all device kinds in their canonical order.
func Kinds() []Kind {
	return []Kind{
		KindSocket,
		KindLight,
		KindFireAlarm,
		KindSecurityAlarm,
		KindCoffeeMachine,
		KindMusicCenter,
	}
}

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindSocket:
		return "SOCKET"
	case KindLight:
		return "LIGHT"
	case KindFireAlarm:
		return "FIRE_ALARM"
	case KindSecurityAlarm:
		return "SECURITY_ALARM"
	case KindCoffeeMachine:
		return "COFFEE_MACHINE"
	case KindMusicCenter:
		return "MUSIC_CENTER"
	default:
		return "UNKNOWN"
	}
}
