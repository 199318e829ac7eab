package session

import (
	"fmt"
	"strings"

	"ascii-roguelike/internal/system"
)

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveN
	ActionMoveS
	ActionMoveE
	ActionMoveW
	ActionMoveNE
	ActionMoveNW
	ActionMoveSE
	ActionMoveSW
	ActionWait
	ActionDescend
	ActionQuit
)

var moveActions = map[system.Direction]Action{
	system.North:     ActionMoveN,
	system.South:     ActionMoveS,
	system.East:      ActionMoveE,
	system.West:      ActionMoveW,
	system.NorthEast: ActionMoveNE,
	system.NorthWest: ActionMoveNW,
	system.SouthEast: ActionMoveSE,
	system.SouthWest: ActionMoveSW,
}

// MoveAction returns the move action for d.
func MoveAction(d system.Direction) Action {
	return moveActions[d]
}

// Direction reports the compass direction of a move action.
func (a Action) Direction() (system.Direction, bool) {
	for d, act := range moveActions {
		if act == a {
			return d, true
		}
	}
	return 0, false
}

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionWait:
		return "wait"
	case ActionDescend:
		return "descend"
	case ActionQuit:
		return "quit"
	}
	if d, ok := a.Direction(); ok {
		return "move " + d.String()
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// ParseAction maps a wire name to an action. Direction names ("north",
// "ne") are moves.
func ParseAction(name string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "wait", ".":
		return ActionWait, nil
	case "descend", ">":
		return ActionDescend, nil
	case "quit":
		return ActionQuit, nil
	}
	d, err := system.ParseDirection(name)
	if err != nil {
		return ActionNone, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return MoveAction(d), nil
}
