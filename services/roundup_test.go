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

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundUp(t *testing.T) {
	cases := []struct {
		original string
		rounded  string
		donation string
	}{
		{"15.75", "16", "0.25"},
		{"10.00", "10", "0"},
		{"10", "10", "0"},
		{"0.01", "1", "0.99"},
		{"3.10", "4", "0.9"},
		{"99.99", "100", "0.01"},
		{"1234.56", "1235", "0.44"},
	}

	for _, tc := range cases {
		t.Run(tc.original, func(t *testing.T) {
			original, err := decimal.NewFromString(tc.original)
			require.NoError(t, err)

			rounded, donation := RoundUp(original)
			assert.Equal(t, tc.rounded, rounded.String())
			assert.Equal(t, tc.donation, donation.String())
		})
	}
}

func TestRoundUpBounds(t *testing.T) {
	// For whole-cent inputs the donation stays strictly below one unit of
	// currency and the parts always reconcile: original + donation == rounded.
	for _, raw := range []string{"0.01", "0.50", "0.99", "1.00", "2.37", "41.99", "100000.01"} {
		original, err := decimal.NewFromString(raw)
		require.NoError(t, err)

		rounded, donation := RoundUp(original)
		assert.True(t, donation.GreaterThanOrEqual(decimal.Zero), "donation for %s is negative", raw)
		assert.True(t, donation.LessThan(decimal.NewFromInt(1)), "donation for %s reaches one unit", raw)
		assert.True(t, original.Add(donation).Equal(rounded), "parts for %s do not reconcile", raw)
	}
}
