// Package menu runs the operations menu of an authenticated session.
package menu

import (
	"errors"
	"strings"
)

// ErrInvalidChoice is reported when a selection is not on the menu.
var ErrInvalidChoice = errors.New("invalid menu choice")

// Operation is a menu selection.
type Operation int

const (
	Invalid Operation = iota
	Deposit
	Withdraw
	BalanceInquiry
	Exit
)

var operationNames = map[Operation]string{
	Invalid:        "invalid",
	Deposit:        "deposit",
	Withdraw:       "withdraw",
	BalanceInquiry: "balance_inquiry",
	Exit:           "exit",
}

func (o Operation) String() string {
	if name, ok := operationNames[o]; ok {
		return name
	}
	return "invalid"
}

// ParseOperation maps "1".."4" to an operation. Anything else is Invalid.
func ParseOperation(choice string) Operation {
	switch strings.TrimSpace(choice) {
	case "1":
		return Deposit
	case "2":
		return Withdraw
	case "3":
		return BalanceInquiry
	case "4":
		return Exit
	default:
		return Invalid
	}
}
