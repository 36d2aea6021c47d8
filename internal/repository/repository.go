// Package repository инкапсулирует доступ к PostgreSQL: справочник
// упражнений, профили клиентов, сохранённые шаблоны и отложенные диалоги.
package repository

import "database/sql"

// Repository содержит все репозитории
type Repository struct {
	Catalog      *CatalogRepository
	Profile      *ProfileRepository
	Template     *TemplateRepository
	Conversation *ConversationRepository
}

// New создаёт новый экземпляр Repository
func New(db *sql.DB) *Repository {
	return &Repository{
		Catalog:      NewCatalogRepository(db),
		Profile:      NewProfileRepository(db),
		Template:     NewTemplateRepository(db),
		Conversation: NewConversationRepository(db),
	}
}
