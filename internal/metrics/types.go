package metrics

import "time"

type HTTPMetric struct {
	Time       time.Time `gorm:"type:timestamptz;not null;index"`
	Method     string    `gorm:"type:text;not null"`
	Path       string    `gorm:"type:text;not null"`
	StatusCode int       `gorm:"not null"`
	DurationMs float64   `gorm:"not null"`
	ClientIP   string    `gorm:"type:text"`
	RequestID  string    `gorm:"type:text"`
	Error      string    `gorm:"type:text"`
}

func (HTTPMetric) TableName() string { return "http_metrics" }

type BusinessMetric struct {
	Time       time.Time         `gorm:"type:timestamptz;not null;index"`
	MetricName string            `gorm:"type:text;not null;index"`
	Value      float64           `gorm:"not null"`
	Labels     map[string]string `gorm:"type:jsonb;serializer:json"`
}

func (BusinessMetric) TableName() string { return "business_metrics" }

type InfraMetric struct {
	Time         time.Time `gorm:"type:timestamptz;not null;index"`
	PoolAcquired int       `gorm:"not null"`
	PoolIdle     int       `gorm:"not null"`
	PoolTotal    int       `gorm:"not null"`
	PoolMax      int       `gorm:"not null"`
	Goroutines   int       `gorm:"not null"`
	HeapAllocMB  float64   `gorm:"column:heap_alloc_mb;not null"`
}

func (InfraMetric) TableName() string { return "infra_metrics" }

// Models lists the tables the recorder writes to, for schema migration.
func Models() []any {
	return []any{&HTTPMetric{}, &BusinessMetric{}, &InfraMetric{}}
}
