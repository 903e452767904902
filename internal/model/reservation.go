package model

// Reservation is a time-bounded booking of a room, as returned by the
// backend.  The room metadata (building code, capacity) is derived
// server-side from the booked room.
//
// Fields:
//  ID            – unique identifier, used for deletion.
//  EnseignantNom – display name of the teacher who owns the booking.
//  SalleNum      – natural-key room number.
//  BatimentCode  – code of the building the room sits in.
//  DateDebut     – start of the booked slot.
//  DateFin       – end of the booked slot.
//  Matiere       – course/subject label.
//  Capacite      – seat capacity of the booked room.
type Reservation struct {
	ID            int64     `json:"id"`
	EnseignantNom string    `json:"enseignantNom"`
	SalleNum      string    `json:"salleNum"`
	BatimentCode  string    `json:"batimentCode"`
	DateDebut     LocalTime `json:"dateDebut"`
	DateFin       LocalTime `json:"dateFin"`
	Matiere       string    `json:"matiere"`
	Capacite      int       `json:"capacite"`
}

// ReservationRequest is the payload for creating a booking.  Conflict,
// capacity and time-ordering validation all happen server-side; the
// client only checks that the fields are present.
type ReservationRequest struct {
	SalleNum  string    `json:"salleNum"`
	DateDebut LocalTime `json:"dateDebut"`
	DateFin   LocalTime `json:"dateFin"`
	Matiere   string    `json:"matiere"`
}
