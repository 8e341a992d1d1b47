// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package zone

import (
	"fmt"
	"strconv"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// AssetModel is a compiled asset as stored in the zone database.
type AssetModel struct {
	Type      uint8  `gorm:"primaryKey;autoIncrement:false"`
	Name      string `gorm:"primaryKey"`
	Data      []byte
	UpdatedAt time.Time
}

// DependencyModel is one edge of the dependency graph.
type DependencyModel struct {
	AssetType uint8  `gorm:"primaryKey;autoIncrement:false"`
	AssetName string `gorm:"primaryKey"`
	DepType   uint8  `gorm:"primaryKey;autoIncrement:false"`
	DepName   string `gorm:"primaryKey"`
}

type ZoneMetadata struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

const FormatVersion = 1

// Store persists compiled assets in an SQLite database.
type Store struct {
	DB *gorm.DB
}

func OpenStore(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("couldn't open zone database: %w", err)
	}
	if err := db.AutoMigrate(&AssetModel{}, &DependencyModel{}, &ZoneMetadata{}); err != nil {
		return nil, fmt.Errorf("couldn't migrate zone database: %w", err)
	}
	if err := db.Save(&ZoneMetadata{Key: "FormatVersion", Value: strconv.Itoa(FormatVersion)}).Error; err != nil {
		return nil, err
	}
	return &Store{DB: db}, nil
}

func (s *Store) Close() error {
	db, err := s.DB.DB()
	if err != nil {
		return err
	}
	return db.Close()
}

func (s *Store) SetMetadata(key, value string) error {
	return s.DB.Save(&ZoneMetadata{Key: key, Value: value}).Error
}

func (s *Store) Metadata(key string) (string, error) {
	var md ZoneMetadata
	if err := s.DB.Where(map[string]any{"key": key}).First(&md).Error; err != nil {
		return "", err
	}
	return md.Value, nil
}

// Save stores an asset and replaces its recorded dependencies.
func (s *Store) Save(info *AssetInfo, data []byte) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		model := AssetModel{Type: uint8(info.Type), Name: info.Name, Data: data}
		if err := tx.Save(&model).Error; err != nil {
			return err
		}
		if err := tx.Where("asset_type = ? AND asset_name = ?", model.Type, model.Name).
			Delete(&DependencyModel{}).Error; err != nil {
			return err
		}
		if len(info.Dependencies) == 0 {
			return nil
		}
		deps := make([]DependencyModel, len(info.Dependencies))
		for i, dep := range info.Dependencies {
			deps[i] = DependencyModel{
				AssetType: model.Type,
				AssetName: model.Name,
				DepType:   uint8(dep.Type),
				DepName:   dep.Name,
			}
		}
		return tx.Create(&deps).Error
	})
}

// StoredAsset is an asset read back from the database. Its dependencies
// only carry type and name.
type StoredAsset struct {
	Type         AssetType
	Name         string
	Data         []byte
	Dependencies []AssetInfo
}

func (s *Store) Load(t AssetType, name string) (*StoredAsset, error) {
	var model AssetModel
	if err := s.DB.Where(map[string]any{"type": uint8(t), "name": name}).First(&model).Error; err != nil {
		return nil, err
	}
	var deps []DependencyModel
	if err := s.DB.Where("asset_type = ? AND asset_name = ?", model.Type, model.Name).
		Order("dep_type, dep_name").Find(&deps).Error; err != nil {
		return nil, err
	}
	out := &StoredAsset{
		Type: AssetType(model.Type),
		Name: model.Name,
		Data: model.Data,
	}
	for _, dep := range deps {
		out.Dependencies = append(out.Dependencies, AssetInfo{Type: AssetType(dep.DepType), Name: dep.DepName})
	}
	return out, nil
}

// Names returns the names of all stored assets of a type, sorted.
func (s *Store) Names(t AssetType) ([]string, error) {
	var names []string
	err := s.DB.Model(&AssetModel{}).Where(map[string]any{"type": uint8(t)}).Order("name").Pluck("name", &names).Error
	return names, err
}
