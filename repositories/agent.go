package repositories

import (
	"github.com/alliance-immobilier/api/models"
	"gorm.io/gorm"
)

// AgentRepository handles database operations for agents. The request-serving
// path only ever reads agents; writes happen through seeding.
type AgentRepository struct {
	db *gorm.DB
}

// NewAgentRepository creates a new agent repository instance
func NewAgentRepository(db *gorm.DB) *AgentRepository {
	return &AgentRepository{db: db}
}

// FindByPropertyID retrieves all agents linked to a property
func (r *AgentRepository) FindByPropertyID(propertyID uint) ([]models.Agent, error) {
	var agents []models.Agent
	result := r.db.
		Joins("JOIN property_agents ON property_agents.agent_id = agents.id").
		Where("property_agents.property_id = ?", propertyID).
		Order("agents.id ASC").
		Find(&agents)
	return agents, result.Error
}

// FindByIDs retrieves the agents with the given ids
func (r *AgentRepository) FindByIDs(ids []uint) ([]models.Agent, error) {
	var agents []models.Agent
	result := r.db.Where("id IN ?", ids).Find(&agents)
	return agents, result.Error
}
