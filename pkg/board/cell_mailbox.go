// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build !compact_board

package board

import (
	"laptudirm.com/x/mess/pkg/cell"
	"laptudirm.com/x/mess/pkg/mailbox"
)

// newPosition constructs the position store for this build. The default
// build uses the wide, machine-word-per-square mailbox back-end; see
// cell_compact.go for the compact_board build tag.
func newPosition() cell.Store {
	return mailbox.New()
}
