package models

// Agent represents a listing agent. Agents and properties are peers linked
// through the property_agents join table; deleting one never cascades to the
// other.
type Agent struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	Name     string  `json:"name" gorm:"not null"`
	Phone    string  `json:"phone" gorm:"not null"`
	Email    string  `json:"email" gorm:"not null"`
	ImageURL *string `json:"image" gorm:"default:null"`

	Properties []Property `json:"properties,omitempty" gorm:"many2many:property_agents"`
}
