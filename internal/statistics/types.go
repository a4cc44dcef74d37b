package statistics

// SystemStatistics 百分比只在有测评记录时返回
type SystemStatistics struct {
	TotalUsers   int64 `json:"totalUsers"`
	StudentCount int64 `json:"studentCount"`
	ExpertCount  int64 `json:"expertCount"`
	AdminCount   int64 `json:"adminCount"`

	TotalTests    int64 `json:"totalTests"`
	MinimalTests  int64 `json:"minimalTests"`
	MildTests     int64 `json:"mildTests"`
	ModerateTests int64 `json:"moderateTests"`
	SevereTests   int64 `json:"severeTests"`

	MinimalPercentage  *float64 `json:"minimalPercentage,omitempty"`
	MildPercentage     *float64 `json:"mildPercentage,omitempty"`
	ModeratePercentage *float64 `json:"moderatePercentage,omitempty"`
	SeverePercentage   *float64 `json:"severePercentage,omitempty"`

	TotalQuestions  int64 `json:"totalQuestions"`
	ActiveQuestions int64 `json:"activeQuestions"`
	TotalAdvices    int64 `json:"totalAdvices"`
}

// TestCountByDate 三个数组按下标一一对应，没有记录的日期为 0
type TestCountByDate struct {
	Dates       []string `json:"dates"`
	TotalTests  []int64  `json:"totalTests"`
	SevereTests []int64  `json:"severeTests"`
}

// DayCount 单日计数，Day 为 YYYY-MM-DD
type DayCount struct {
	Day   string
	Count int64
}

type groupCount struct {
	Label string
	Count int64
}
