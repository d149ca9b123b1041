// SPDX-License-Identifier: MIT

// Package fixtures provides hand-built reference diagrams of electron and
// positron scattering. They serve as deterministic inputs for tests,
// benchmarks and the feyngen CLI, next to the random diagrams of package
// generator.
//
// Catalogue (loops = particles - vertices + connected components):
//
//	| Name         | Process                     | Inner vertices | Loops |
//	|--------------|-----------------------------|----------------|-------|
//	| box          | e⁻ e⁺ → e⁻ e⁺, one-loop box | 4              | 1     |
//	| moller       | e⁻ e⁻ → e⁻ e⁻, tree level   | 2              | 0     |
//	| ladder       | e⁻ e⁺ → e⁻ e⁺, two rungs    | 6              | 2     |
//	| compton      | e⁻ γ → γ e⁻, tree level     | 2              | 0     |
//	| annihilation | e⁻ e⁺ → e⁻ e⁺, s-channel    | 2              | 0     |
//
// Every Build call creates a fresh store. The returned diagrams are frozen
// and pass core.Verify.
package fixtures
