package ability

import (
	"errors"

	"github.com/lixenwraith/abilitygate/pool"
)

// Every way an ability use can be refused. All of these are expected,
// recoverable outcomes returned as values; a failed check or trigger has
// zero side effects and the caller simply retries on a later step.
//
// When several reasons hold at once, composite predicates report the
// highest-priority one, in declaration order: ErrNotPressed wins over
// everything (the ability was never attempted), then ErrNoCharges,
// ErrOnCooldown, ErrOnGlobalCooldown and ErrPoolInsufficient.
var (
	// ErrNotPressed means the input layer did not report the ability as
	// pressed this step.
	ErrNotPressed = errors.New("ability was not pressed")

	// ErrNoCharges means the ability has a charge counter and it is empty.
	ErrNoCharges = errors.New("no charges available")

	// ErrOnCooldown means the ability's own recovery timer has not elapsed.
	ErrOnCooldown = errors.New("ability on cooldown")

	// ErrOnGlobalCooldown means the shared cooldown of the ability set has
	// not elapsed.
	ErrOnGlobalCooldown = errors.New("ability set on global cooldown")

	// ErrPoolInsufficient means the backing resource pool cannot cover the
	// ability's cost. Aliased from the pool package so errors.Is works
	// across both.
	ErrPoolInsufficient = pool.ErrInsufficient
)
