package device

import (
	"fmt"
	"sync"
)

// Regime is the coffee machine program.
type Regime uint8

// Coffee machine regimes. SetRegime stores its argument modulo regimeCount.
const (
	RegimeOff Regime = iota
	RegimeLatte
	RegimeCappuccino
	RegimeEspresso
	RegimeRistretto

	regimeCount = 5
)

// String returns the regime name.
func (r Regime) String() string {
	switch r {
	case RegimeOff:
		return "OFF"
	case RegimeLatte:
		return "LATTE"
	case RegimeCappuccino:
		return "CAPPUCCINO"
	case RegimeEspresso:
		return "ESPRESSO"
	case RegimeRistretto:
		return "RISTRETTO"
	default:
		return fmt.Sprintf("REGIME(%d)", uint8(r))
	}
}

// Drink returns the lower-case drink name, or "" for RegimeOff.
func (r Regime) Drink() string {
	switch r {
	case RegimeLatte:
		return "latte"
	case RegimeCappuccino:
		return "cappuccino"
	case RegimeEspresso:
		return "espresso"
	case RegimeRistretto:
		return "ristretto"
	default:
		return ""
	}
}

// Brew is the outcome of MakeCoffee.
type Brew struct {
	Regime Regime
	Made   bool
}

// Message returns the text the machine shows for this brew.
func (b Brew) Message() string {
	if !b.Made {
		return "Machine is off!"
	}
	return fmt.Sprintf("Making %s... Done!", b.Regime.Drink())
}

// CoffeeMachine is the smart coffee machine. A new machine is in RegimeOff.
type CoffeeMachine struct {
	mu     sync.RWMutex
	regime Regime
}

// NewCoffeeMachine creates a coffee machine in RegimeOff.
func NewCoffeeMachine() *CoffeeMachine {
	return &CoffeeMachine{}
}

// SetRegime selects regime value mod 5.
func (c *CoffeeMachine) SetRegime(value uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.regime = Regime(value % regimeCount)
}

// TurnOff selects RegimeOff.
func (c *CoffeeMachine) TurnOff() {
	c.SetRegime(uint(RegimeOff))
}

// Regime returns the selected regime.
func (c *CoffeeMachine) Regime() Regime {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.regime
}

// MakeCoffee brews a drink for the selected regime. In RegimeOff nothing is
// made and the returned Brew says so.
func (c *CoffeeMachine) MakeCoffee() Brew {
	r := c.Regime()
	return Brew{Regime: r, Made: r != RegimeOff}
}

// State returns the state text, e.g. "regime LATTE".
func (c *CoffeeMachine) State() string {
	return "regime " + c.Regime().String()
}
