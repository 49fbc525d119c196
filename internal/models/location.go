package models

// Location is a point of interest. Its coordinates are resolved from the
// address exactly once, at creation time, and never recomputed.
type Location struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"not null" json:"name"`
	Address   string  `gorm:"not null" json:"address"`
	Latitude  float64 `gorm:"not null" json:"latitude"`
	Longitude float64 `gorm:"not null" json:"longitude"`

	Comments []Comment `gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE" json:"-"`
	FavUsers []User    `gorm:"many2many:favorites;constraint:OnDelete:CASCADE" json:"-"`
}

// NewLocation builds a location from already-resolved coordinates. Geocoding
// is the caller's responsibility (see the geocode package) so that an
// unresolvable address fails before any row is created.
func NewLocation(name, address string, latitude, longitude float64) *Location {
	return &Location{
		Name:      name,
		Address:   address,
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// Serialize returns the full wire representation, including simplified
// comments and favoriting users.
func (l *Location) Serialize() map[string]any {
	comments := make([]map[string]any, 0, len(l.Comments))
	for _, c := range l.Comments {
		comments = append(comments, c.SimpleSerialize())
	}
	favUsers := make([]map[string]any, 0, len(l.FavUsers))
	for _, u := range l.FavUsers {
		favUsers = append(favUsers, u.SimpleSerialize())
	}
	return map[string]any{
		"id":        l.ID,
		"name":      l.Name,
		"address":   l.Address,
		"latitude":  l.Latitude,
		"longitude": l.Longitude,
		"comments":  comments,
		"fav_users": favUsers,
	}
}

// SimpleSerialize returns the minimal representation for embedding elsewhere.
func (l *Location) SimpleSerialize() map[string]any {
	return map[string]any{
		"id":      l.ID,
		"name":    l.Name,
		"address": l.Address,
	}
}
