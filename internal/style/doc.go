// Package style resolves flag bags into CSS.
//
// Each concern (display, flex controls, sizing, typography, colour,
// background) is a Resolver: a pure function from Flags to a Fragment of
// declarations. Templates compose resolvers, literal declarations, media
// blocks and child rules in a fixed order; later declarations override
// earlier ones exactly as they would in CSS.
//
//	block := style.P.Resolve(style.Flags{Center: true})
//	css := style.Scope(".intro", style.P.Sections(style.Flags{Center: true}))
//
// Global rules (resets, the @font-face rule and the flash keyframes) are
// written once through InitializeGlobalStyles or an Injector.
package style
