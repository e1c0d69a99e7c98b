package storage

// Storage defines the root interface for the reserve data layer.
// Components should depend on the narrower ReserveReader or ReserveWriter when they can.
type Storage interface {
	ReserveReader
	ReserveWriter
}
