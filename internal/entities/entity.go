package entities

import "github.com/KirkDiggler/rpg-toolkit/core"

// Compile-time check that the character record satisfies core.Entity, so it
// can ride the rpg-toolkit event bus as an event source.
var _ core.Entity = (*CharacterRecord)(nil)
