package dbtime

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const layout = "2006-01-02"

// Date 只保留年月日（对应数据库 DATE 列，JSON 格式 "2006-01-02"）
type Date struct{ time.Time }

func Today() Date { return From(time.Now()) }

// From: 从 time.Time 取日期部分，丢弃时分秒和时区
func From(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func Parse(s string) (Date, error) {
	var d Date
	return d, d.parse(s)
}

func (d Date) String() string { return d.Format(layout) }

// AddDays 返回偏移后的新日期
func (d Date) AddDays(n int) Date { return From(d.AddDate(0, 0, n)) }

func (d Date) Before(o Date) bool { return d.Time.Before(o.Time) }

func (d *Date) parse(s string) error {
	s = strings.TrimSpace(s)
	// 容忍带时间的输入（"2006-01-02T15:04:05Z" 等），只取前 10 位
	if len(s) > len(layout) {
		s = s[:len(layout)]
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Scan: 接受 time.Time 或字符串
func (d *Date) Scan(v any) error {
	switch x := v.(type) {
	case time.Time:
		*d = From(x)
		return nil
	case []byte:
		return d.parse(string(x))
	case string:
		return d.parse(x)
	case nil:
		d.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("dbtime: unsupported Scan type %T", v)
	}
}

// Value: 发送 "2006-01-02"，Postgres/MySQL 的 DATE 都认
func (d Date) Value() (driver.Value, error) {
	if d.Time.IsZero() {
		return nil, nil
	}
	return d.Format(layout), nil
}

func (Date) GormDataType() string { return "date" }

func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(layout))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		d.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return d.parse(s)
}
