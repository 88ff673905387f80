/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package qrencode

// encodeOptions holds the optional parameters of MakeQR: EC level, mask,
// version range, and EC-level auto-boost.
type encodeOptions struct {
	ec         ECLevel
	mask       int // -1 means automatic mask selection.
	minVersion Version
	maxVersion Version
	boostECL   bool
}

// Option configures a MakeQR call.
type Option func(*encodeOptions)

// WithECLevel sets the error correction level. The default is Medium.
func WithECLevel(ec ECLevel) Option {
	return func(o *encodeOptions) { o.ec = ec }
}

// WithMask pins the mask pattern to use, 0..7, instead of selecting the
// minimum-penalty mask automatically.
func WithMask(mask int) Option {
	return func(o *encodeOptions) { o.mask = mask }
}

// WithMinVersion sets the smallest version MakeQR may choose. The default is
// MinVersion.
func WithMinVersion(v Version) Option {
	return func(o *encodeOptions) { o.minVersion = v }
}

// WithMaxVersion sets the largest version MakeQR may choose. The default is
// MaxVersion.
func WithMaxVersion(v Version) Option {
	return func(o *encodeOptions) { o.maxVersion = v }
}

// WithBoostECL causes MakeQR to raise the error correction level past what
// was requested, as far as Low->Medium->Quartile->High, as long as the
// message still fits in the chosen version. Off by default.
func WithBoostECL(boost bool) Option {
	return func(o *encodeOptions) { o.boostECL = boost }
}
