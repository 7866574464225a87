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

import (
	"time"

	"github.com/fmodgo/fmod/internal/native"
)

// SetNetworkProxy sets a proxy server, as "host:port" with optional
// "user:password@" credentials, for internet streams.
func (s System) SetNetworkProxy(proxy string) error {
	return check(lib.System_SetNetworkProxy(s.raw, proxy))
}

// NetworkProxy returns the proxy server.
func (s System) NetworkProxy() (string, error) {
	buf := make([]byte, 512)
	if err := check(lib.System_GetNetworkProxy(s.raw, &buf[0], int32(len(buf)))); err != nil {
		return "", err
	}
	return native.BytesToString(buf), nil
}

// SetNetworkTimeout sets the timeout for network streams.
func (s System) SetNetworkTimeout(timeout time.Duration) error {
	return check(lib.System_SetNetworkTimeout(s.raw, int32(timeout/time.Millisecond)))
}

// NetworkTimeout returns the timeout for network streams.
func (s System) NetworkTimeout() (time.Duration, error) {
	var ms int32
	err := check(lib.System_GetNetworkTimeout(s.raw, &ms))
	return time.Duration(ms) * time.Millisecond, err
}
