package model

type UserStats struct {
	BookmarkStats struct {
		Total     int            `json:"total"`
		TagCounts map[string]int `json:"tag_counts"`
	} `json:"bookmark_stats"`
	SystemStats struct {
		CPUUsagePercent    float64 `json:"cpu_usage_percent"`
		MemoryUsagePercent float64 `json:"memory_usage_percent"`
	} `json:"system_stats"`
}
