package structs

type EnviromentModel struct {
	Database Database
	RabbitMQ rabbitmq
	Log      log
	Server   server
	Router   router
}

type server struct {
	Mode string
}

type Database struct {
	Client      string
	MaxIdle     uint
	MaxLifeTime string
	MaxOpenConn uint
	User        string
	Password    string
	Host        string
	Db          string
	Params      string
	Port        string
	LogEnable   int
}

type rabbitmq struct {
	Enable int
	Domain string
	Queue  string
}

type log struct {
	FileEnable     int
	Level          string
	ElkEnable      int
	ElkIndex       string
	ElkURL         string
	LogstashEnable int
	LogstashURL    string
	LogstashIndex  string
}

type router struct {
	Port int
}
