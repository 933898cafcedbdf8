// Package caster defines the casting capability used by the media player
// and the null implementation used when casting is unavailable.
//
// Callers obtain a Caster through New and never need to check whether
// casting is present:
//
//	c := caster.New(caster.Options{Enabled: conf.Casting})
//	c.AddMediaRouteMenuItem(menu, true)
//	if c.IsConnected() {
//		_ = c.Player().LoadMedia(media)
//	}
package caster
