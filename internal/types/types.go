package types

// EntityID — идентификатор сущности мира. Ноль не выдаётся никогда.
type EntityID uint64
