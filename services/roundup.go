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

package services

import "github.com/shopspring/decimal"

// RoundUp computes the charitable round-up for a purchase amount: the rounded
// amount is the next whole currency unit, the donation is the difference,
// rounded half away from zero to 2 decimal places. With whole-cent inputs the
// rounding step is exact and the donation stays in [0, 1). The caller
// validates positivity and rejects amounts below cent precision.
func RoundUp(original decimal.Decimal) (rounded, donation decimal.Decimal) {
	rounded = original.Ceil()
	donation = rounded.Sub(original).Round(2)
	return rounded, donation
}
