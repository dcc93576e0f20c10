package model

import "fmt"

// Tab selects one of the top-level page sections
type Tab string

const (
	TabHome     Tab = "home"
	TabRegister Tab = "register"
	TabProfile  Tab = "profile"
	TabStats    Tab = "stats"
)

// AllTabs lists the tabs in navigation order
func AllTabs() []Tab {
	return []Tab{TabHome, TabRegister, TabProfile, TabStats}
}

// ParseTab converts a raw tab name into a Tab
func ParseTab(s string) (Tab, error) {
	switch t := Tab(s); t {
	case TabHome, TabRegister, TabProfile, TabStats:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTab, s)
	}
}

// Valid reports whether t is one of the known tabs
func (t Tab) Valid() bool {
	_, err := ParseTab(string(t))
	return err == nil
}
