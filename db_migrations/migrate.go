// Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
//
// WSO2 LLC. licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package dbmigrations

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// migration is one schema change, applied at most once, in ID order.
type migration struct {
	ID      int
	Migrate func(db *gorm.DB) error
}

var migrations = []migration{
	migration001,
	migration002,
}

// Migrate applies all pending migrations in ID order. Applied IDs are tracked
// by gormigrate in its migrations table; a failure stops the run and leaves
// earlier migrations applied.
func Migrate(db *gorm.DB) error {
	sort.Slice(migrations, func(i, j int) bool { return migrations[i].ID < migrations[j].ID })

	gms := make([]*gormigrate.Migration, len(migrations))
	for i, m := range migrations {
		gms[i] = &gormigrate.Migration{
			ID:      fmt.Sprintf("%03d", m.ID),
			Migrate: m.Migrate,
		}
	}

	if err := gormigrate.New(db, gormigrate.DefaultOptions, gms).Migrate(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	slog.Info("Migrations applied", "count", len(gms))
	return nil
}

func runSQL(tx *gorm.DB, sql string) error {
	return tx.Exec(sql).Error
}
