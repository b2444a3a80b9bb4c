// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
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

// Package build holds version information stamped into the binary.
// Version is overridden at link time by scripts/build via
// "-ldflags -X laptudirm.com/x/mess/internal/build.Version=...";
// the value below is only what a plain "go build" embeds.
package build

// Version is the engine's version string.
var Version = "dev"
