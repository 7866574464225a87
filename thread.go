// Copyright 2026 The fmod-go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fmod

// ThreadSetAttributes configures an engine thread. It must be called before
// the thread is created for the settings to apply.
func ThreadSetAttributes(typ ThreadType, affinity ThreadAffinity, priority ThreadPriority, stackSize ThreadStackSize) error {
	return readLocked(func() error {
		return check(lib.Thread_SetAttributes(int32(typ), int64(affinity), int32(priority), uint32(stackSize)))
	})
}
