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

package wiring

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/wso2/roundup-donation-platform/roundup-service/config"
	"github.com/wso2/roundup-donation-platform/roundup-service/controllers"
	"github.com/wso2/roundup-donation-platform/roundup-service/middleware/apikeyauth"
	"github.com/wso2/roundup-donation-platform/roundup-service/repositories"
)

// CombinedAuth accepts any organization's API key. AdminAuth additionally
// requires the admin flag. They are distinct types so the injector can tell
// the two chains apart.
type CombinedAuth apikeyauth.Middleware

type AdminAuth apikeyauth.Middleware

// AppParams contains all wired application dependencies
type AppParams struct {
	// Middleware
	CombinedAuth CombinedAuth
	AdminAuth    AdminAuth
	Logger       *slog.Logger

	// Controllers
	OrganizationController controllers.OrganizationController
	TransactionController  controllers.TransactionController

	// Database
	DB *gorm.DB
}

func ProvideConfigFromPtr(config *config.Config) config.Config {
	return *config
}

func ProvideAdminBootstrapConfig(config config.Config) config.AdminBootstrapConfig {
	return config.AdminBootstrap
}

func ProvideOrganizationRepo(db *gorm.DB) repositories.OrganizationRepository {
	return repositories.NewOrganizationRepo(db)
}

func ProvideTransactionRepo(db *gorm.DB) repositories.TransactionRepository {
	return repositories.NewTransactionRepo(db)
}

func ProvideCombinedAuthMiddleware(config config.Config, orgRepo repositories.OrganizationRepository) CombinedAuth {
	return CombinedAuth(apikeyauth.APIKeyAuthMiddleware(config.AuthHeader, orgRepo))
}

func ProvideAdminAuthMiddleware(config config.Config, orgRepo repositories.OrganizationRepository) AdminAuth {
	return AdminAuth(apikeyauth.AdminAuthMiddleware(config.AuthHeader, orgRepo))
}
