package entity

// DashboardStats summarizes a user's CRM activity for the dashboard page.
type DashboardStats struct {
	TotalClients int `json:"totalClients"`
	TotalBuyers  int `json:"totalBuyers"`
	ActiveAlerts int `json:"activeAlerts"`
	RecentFiles  int `json:"recentFiles"`
}
