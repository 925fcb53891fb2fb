package systems

import (
	"misty-maze/components"
	"misty-maze/ecs"
	"misty-maze/generation"
)

// CoinSystem picks up coins the player walks onto. Coins work like sensors:
// they never block movement.
type CoinSystem struct {
	world *ecs.World
	coins map[generation.Point]ecs.EntityID
	total int
}

// NewCoinSystem creates a new coin system
func NewCoinSystem() *CoinSystem {
	return &CoinSystem{coins: make(map[generation.Point]ecs.EntityID)}
}

// Initialize subscribes to movement and level changes
func (s *CoinSystem) Initialize(world *ecs.World) {
	s.world = world
	world.Subscribe(EventMovement, s.handleMove)
	world.Subscribe(EventMazeReplaced, func(ecs.Event) { s.Reindex(world) })
	s.Reindex(world)
}

// Update does nothing; pickups are driven by movement events
func (s *CoinSystem) Update(world *ecs.World, dt float64) {}

// Reindex rebuilds the position lookup from the coin entities in the world
func (s *CoinSystem) Reindex(world *ecs.World) {
	clear(s.coins)
	for _, e := range world.GetEntitiesWithTag(components.TagCoin) {
		comp, ok := world.GetComponent(e.ID, components.Position)
		if !ok {
			continue
		}
		s.coins[comp.(*components.PositionComponent).Point()] = e.ID
	}
	s.total = len(s.coins)
}

// Remaining returns how many coins are still in the maze
func (s *CoinSystem) Remaining() int {
	return len(s.coins)
}

// Total returns how many coins the current maze started with
func (s *CoinSystem) Total() int {
	return s.total
}

func (s *CoinSystem) handleMove(event ecs.Event) {
	move := event.(PlayerMoveEvent)
	p := generation.Point{X: move.ToX, Y: move.ToY}
	coinID, ok := s.coins[p]
	if !ok {
		return
	}

	value := 1
	if comp, ok := s.world.GetComponent(coinID, components.Coin); ok {
		value = comp.(*components.CoinComponent).Value
	}
	collected := 0
	if comp, ok := s.world.GetComponent(move.EntityID, components.Wallet); ok {
		wallet := comp.(*components.WalletComponent)
		wallet.Coins += value
		collected = wallet.Coins
	}

	delete(s.coins, p)
	s.world.RemoveEntity(coinID)
	GetMessageLog().Addf("Coin collected: %d", coinID)

	s.world.EmitEvent(CoinCollectedEvent{
		PlayerID:  move.EntityID,
		CoinID:    coinID,
		X:         p.X,
		Y:         p.Y,
		Collected: collected,
		Remaining: len(s.coins),
	})
	if len(s.coins) == 0 {
		GetMessageLog().Add("All coins collected! Press R for a new maze.")
	}
}
