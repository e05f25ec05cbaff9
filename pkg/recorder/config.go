package recorder

import "time"

const (
	ModeNone  = "none"
	ModeFile  = "file"
	ModeMongo = "mongo"
	ModeRedis = "redis"
)

type MongoConf struct {
	Url          string `json:",optional"`
	DataBaseName string `json:",default=dots_and_boxes"`
	Collection   string `json:",default=records"`
}

type RedisConf struct {
	Host    string `json:",optional"`
	Type    string `json:",default=node,options=node|cluster"`
	Pass    string `json:",optional"`
	ListKey string `json:",default=dots-and-boxes:records"`
	// Expire is the list lifetime in seconds, refreshed on every push.
	Expire int `json:",default=3600"`
}

type Conf struct {
	Mode     string        `json:",default=none,options=none|file|mongo|redis"`
	File     string        `json:",default=records.jsonl"`
	Interval time.Duration `json:",default=1s"`
	Mongo    MongoConf     `json:",optional"`
	Redis    RedisConf     `json:",optional"`
}
