package userop

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// EntityType is a protocol role associated with a user operation.
type EntityType int

const (
	EntityAccount EntityType = iota
	EntityPaymaster
	EntityFactory
	EntityAggregator
)

// entityTypes lists every entity type in declared order.
var entityTypes = [...]EntityType{
	EntityAccount,
	EntityPaymaster,
	EntityFactory,
	EntityAggregator,
}

var entityTypeNames = map[EntityType]string{
	EntityAccount:    "account",
	EntityPaymaster:  "paymaster",
	EntityFactory:    "factory",
	EntityAggregator: "aggregator",
}

// EntityTypes returns all entity types in declared order.
func EntityTypes() []EntityType {
	types := make([]EntityType, len(entityTypes))
	copy(types, entityTypes[:])
	return types
}

func (t EntityType) String() string {
	if name, ok := entityTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("EntityType(%d)", int(t))
}

// ParseEntityType returns the entity type with the given name.
func ParseEntityType(name string) (EntityType, error) {
	for _, t := range entityTypes {
		if entityTypeNames[t] == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEntityType, name)
}

func (t EntityType) MarshalText() ([]byte, error) {
	name, ok := entityTypeNames[t]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEntityType, int(t))
	}
	return []byte(name), nil
}

func (t *EntityType) UnmarshalText(text []byte) error {
	parsed, err := ParseEntityType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Entity is a protocol entity of a given type at a given address.
type Entity struct {
	Kind    EntityType     `json:"kind"`
	Address common.Address `json:"address"`
}

func (e Entity) String() string {
	return fmt.Sprintf("%s:%s", e.Kind, e.Address.Hex())
}

// Entities returns the entities associated with the operation, in declared
// entity type order. The account is always present. Aggregators are never
// reported since resolving them needs the signature scheme.
func (op *UserOperation) Entities() []Entity {
	entities := make([]Entity, 0, len(entityTypes))
	for _, t := range entityTypes {
		if addr, ok := op.EntityAddress(t); ok {
			entities = append(entities, Entity{Kind: t, Address: addr})
		}
	}
	return entities
}

// EntityAddress returns the address of the entity of type t, if the operation
// has one.
func (op *UserOperation) EntityAddress(t EntityType) (common.Address, bool) {
	switch t {
	case EntityAccount:
		return op.Sender, true
	case EntityPaymaster:
		return op.Paymaster()
	case EntityFactory:
		return op.Factory()
	default:
		return common.Address{}, false
	}
}
