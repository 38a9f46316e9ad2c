package repository

import "gorm.io/gorm"

// Repositories 仓库集合，用于统一管理所有仓库
type Repositories struct {
	DB         *gorm.DB // 内存模式下为 nil
	Catalog    CatalogStore
	Preference PreferenceStore
}

// GormStore 基于 gorm 的目录存储
type GormStore struct {
	*ToolRepository
	*CategoryRepository
	*TagRepository
}

// NewGormStore 创建 gorm 目录存储
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		ToolRepository:     NewToolRepository(db),
		CategoryRepository: NewCategoryRepository(db),
		TagRepository:      NewTagRepository(db),
	}
}

// NewRepositories 创建关系型数据库仓库
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		DB:         db,
		Catalog:    NewGormStore(db),
		Preference: NewPreferenceRepository(db),
	}
}

// NewMemoryRepositories 创建内存仓库，用于开发与测试
func NewMemoryRepositories() *Repositories {
	store := NewMemoryStore()
	return &Repositories{
		Catalog:    store,
		Preference: store,
	}
}
