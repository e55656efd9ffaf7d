package component

// Health marks an entity as damageable.
type Health struct {
	Current float64
	Max     float64
}

func (h *Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

var HealthComponent = NewComponent[Health]()
