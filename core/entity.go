package core

// Entity is a unique identifier for a simulated entity.
// IDs are dense and never reused within a world's lifetime; 0 is reserved
// as "no entity" so stores can use it as a sentinel.
type Entity uint64

// NoEntity is the zero sentinel returned by lookups that find nothing.
const NoEntity Entity = 0
