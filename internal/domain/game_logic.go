package domain

type TickResult struct {
	Moved  bool
	Ate    bool
	Ended  bool
	Reason EndReason
}

// Tick advances the round by one step. It is a no-op before the first
// direction is chosen and after the round has ended.
func (gs *GameState) Tick() TickResult {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if !gs.running || gs.direction == DirectionNone {
		return TickResult{}
	}

	gs.ticks++

	newHead := gs.Field.Move(gs.snake[0], gs.direction)

	if !gs.Field.Contains(newHead) {
		return gs.endUnlocked(EndWall)
	}
	if gs.occupiesUnlocked(newHead) {
		return gs.endUnlocked(EndSelf)
	}

	gs.snake = append(gs.snake, Cell{})
	copy(gs.snake[1:], gs.snake)
	gs.snake[0] = newHead

	result := TickResult{Moved: true}

	if newHead.Equals(gs.food) {
		result.Ate = true
		if err := gs.spawnFoodUnlocked(); err != nil {
			// the snake covers every cell; food stays under the head
			ended := gs.endUnlocked(EndBoardFull)
			ended.Moved, ended.Ate = true, true
			return ended
		}
		return result
	}

	gs.snake = gs.snake[:len(gs.snake)-1]
	return result
}

func (gs *GameState) endUnlocked(reason EndReason) TickResult {
	gs.running = false
	gs.reason = reason
	return TickResult{Ended: true, Reason: reason}
}
