package domain

import "fmt"

// ConnectionProfile describes one Homebox instance the tool can pull items from.
type ConnectionProfile struct {
	Name  string
	Host  string
	Token string
}

func (p ConnectionProfile) String() string {
	return fmt.Sprintf("%s@%s", p.Name, p.Host)
}
