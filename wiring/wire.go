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

//go:build wireinject
// +build wireinject

package wiring

import (
	"log/slog"

	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/wso2/roundup-donation-platform/roundup-service/clients/secretstore"
	"github.com/wso2/roundup-donation-platform/roundup-service/config"
	"github.com/wso2/roundup-donation-platform/roundup-service/controllers"
	"github.com/wso2/roundup-donation-platform/roundup-service/services"
)

var configProviderSet = wire.NewSet(
	ProvideConfigFromPtr,
	ProvideAdminBootstrapConfig,
)

var repositoryProviderSet = wire.NewSet(
	ProvideOrganizationRepo,
	ProvideTransactionRepo,
)

var serviceProviderSet = wire.NewSet(
	services.NewOrganizationService,
	services.NewTransactionService,
)

var controllerProviderSet = wire.NewSet(
	controllers.NewOrganizationController,
	controllers.NewTransactionController,
)

var middlewareProviderSet = wire.NewSet(
	ProvideCombinedAuthMiddleware,
	ProvideAdminAuthMiddleware,
)

// ProvideLogger provides the configured slog.Logger instance
func ProvideLogger() *slog.Logger {
	return slog.Default()
}

var loggerProviderSet = wire.NewSet(
	ProvideLogger,
)

func InitializeAppParams(cfg *config.Config, db *gorm.DB, secrets secretstore.Store) (*AppParams, error) {
	wire.Build(
		configProviderSet,
		loggerProviderSet,
		repositoryProviderSet,
		serviceProviderSet,
		controllerProviderSet,
		middlewareProviderSet,
		wire.Struct(new(AppParams), "*"),
	)
	return &AppParams{}, nil
}
