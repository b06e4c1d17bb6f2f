package api

import "context"

// DashboardStats is the headline metrics block of the dashboard.
// TotalRevenue is in dollars, as the API reports it.
type DashboardStats struct {
	TotalUsers          int     `json:"totalUsers"`
	TotalLawyers        int     `json:"totalLawyers"`
	TotalClients        int     `json:"totalClients"`
	ActiveConsultations int     `json:"activeConsultations"`
	ConsultationsToday  int     `json:"consultationsToday"`
	PendingApprovals    int     `json:"pendingApprovals"`
	TotalRevenue        int64   `json:"totalRevenue"`
	AvgRating           float64 `json:"avgRating"`
	RecentUsers         []User  `json:"recentUsers"`
}

// DashboardStats fetches the dashboard metrics.
func (c *Client) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	if err := c.Get(ctx, "/admin/dashboard", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// NamedValue is one slice of a breakdown chart.
type NamedValue struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Analytics is the chart data behind the dashboard graphs.
type Analytics struct {
	RegistrationsByDay []struct {
		Date    string `json:"date"`
		Clients int    `json:"clients"`
		Lawyers int    `json:"lawyers"`
		Total   int    `json:"total"`
	} `json:"registrationsByDay"`
	RevenueByDay []struct {
		Date   string `json:"date"`
		Amount int64  `json:"amount"`
	} `json:"revenueByDay"`
	ConsultationsByCategory []NamedValue `json:"consultationsByCategory"`
	ConsultationsByStatus   []NamedValue `json:"consultationsByStatus"`
	UsersByRole             []NamedValue `json:"usersByRole"`
	RevenueByMonth          []struct {
		Month  string `json:"month"`
		Amount int64  `json:"amount"`
	} `json:"revenueByMonth"`
}

// Analytics fetches the dashboard chart data.
func (c *Client) Analytics(ctx context.Context) (*Analytics, error) {
	var a Analytics
	if err := c.Get(ctx, "/admin/analytics", nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}
