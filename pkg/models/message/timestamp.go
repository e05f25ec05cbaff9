package message

import "time"

const TimeFormatString = time.RFC3339Nano

type TimeStamp string

func NewTimeStamp(t time.Time) TimeStamp {
	return TimeStamp(t.UTC().Format(TimeFormatString))
}

func (ts TimeStamp) Time() time.Time {
	parsedTime, _ := time.Parse(TimeFormatString, string(ts))
	return parsedTime
}
