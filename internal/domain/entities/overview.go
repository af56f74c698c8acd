package entities

// OverviewStats summarises the concierge desk for the admin dashboard
type OverviewStats struct {
	TotalMembers      int                    `json:"total_members"`
	TotalBookings     int                    `json:"total_bookings"`
	TotalServices     int                    `json:"total_services"`
	AvailableServices int                    `json:"available_services"`
	MembersByTier     map[MembershipTier]int `json:"members_by_tier"`
	BookingsByStatus  map[BookingStatus]int  `json:"bookings_by_status"`
	BookingsByPayment map[PaymentStatus]int  `json:"bookings_by_payment"`
	PaidRevenue       float64                `json:"paid_revenue"`
}

// ConciergeOverview lists every member, booking and service, newest first
type ConciergeOverview struct {
	Stats    OverviewStats `json:"stats"`
	Members  []*Profile    `json:"members"`
	Bookings []*Booking    `json:"bookings"`
	Services []*Service    `json:"services"`
}
