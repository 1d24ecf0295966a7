/*
Package mixin composes objects from partial implementations.

A definition pairs Strategies, which name the composed methods and how
their implementations combine, with an ordered list of mixin specs.
Each call to the resulting Factory constructs every mixin with the same
args and returns an Instance whose methods combine the mixin methods of
the same name.

	factory, err := mixin.Define(mixin.Strategies{
		{"Render", mixin.Parallel},
		{"Transform", mixin.Pipe},
		{"Handler", mixin.Override},
	}, &Logging{}, mixin.Of[Routing](), NewCache)

	app, err := factory(cfg)
	out, pout, err := app.Call("Transform", input)

Method results are immediate values, pending promises or errors.
Strategies in Async always produce a promise while those in Sync fail
with ErrPromiseInSyncMode when an implementation is pending.

Mixins embed Self to call composed methods so that calls made from
within a mixin observe the contributions of all the other mixins.
*/
package mixin
