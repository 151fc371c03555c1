package model

//go:generate go run github.com/dmarkham/enumer -type PKKind -trimprefix PKKind -transform lower -yaml -output pkkind.gen.go

// PKKind selects the primary-key strategy a model definition declares.
type PKKind int

const (
	PKKindInt PKKind = iota
	PKKindBigInt
	PKKindSmallInt
	PKKindUUID
)

// Mixin returns the name of the embeddable type implementing the strategy.
func (k PKKind) Mixin() string {
	switch k {
	case PKKindBigInt:
		return "BigIntPK"
	case PKKindSmallInt:
		return "SmallIntPK"
	case PKKindUUID:
		return "UUIDPK"
	default:
		return "IntPK"
	}
}

// Column returns the primary-key column name the strategy uses.
func (k PKKind) Column() string {
	if k == PKKindUUID {
		return "uuid"
	}
	return "id"
}
