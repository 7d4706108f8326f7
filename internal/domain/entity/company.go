package entity

import "time"

// Company representa una organización/tenant del sistema.
// El motor de alertas solo consume su existencia.
type Company struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
