package model

import (
	"fmt"
	"sync"
	"time"
)

type queuedPlayer struct {
	player   Player
	joinedAt time.Time
}

// Queue is the FIFO matchmaking queue. Players are paired in the order they
// joined.
type Queue struct {
	mu      sync.Mutex
	players []queuedPlayer
}

func NewQueue() *Queue {
	return &Queue{players: []queuedPlayer{}}
}

func (q *Queue) AddPlayer(player Player) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, qp := range q.players {
		if qp.player.ID == player.ID {
			return fmt.Errorf("player already in queue")
		}
	}
	q.players = append(q.players, queuedPlayer{player: player, joinedAt: time.Now()})
	return nil
}

// GetNextPair removes and returns the two players who have waited longest.
// The caller must check Size() >= 2 first.
func (q *Queue) GetNextPair() (Player, Player) {
	q.mu.Lock()
	defer q.mu.Unlock()

	player1 := q.players[0].player
	player2 := q.players[1].player
	q.players = q.players[2:]
	return player1, player2
}

func (q *Queue) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.players)
}
