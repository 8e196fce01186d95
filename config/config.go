package config

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var ConfigInfo config

// Init reads config.yml from the usual locations into ConfigInfo.
// Viper is case-insensitive and supports env overrides, which is why the
// keys are read out manually instead of one big Unmarshal.
func Init() {
	viper.SetConfigType("yaml")
	viper.SetConfigName("config.yml")

	configPaths := []string{
		"./config",
		"../config",
		"../../config",
		".",
	}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	viper.SetEnvPrefix("vidtube")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logrus.Errorf("config file not found: %v", err)
		} else {
			logrus.Errorf("config error: %v", err)
		}
		return
	}
	logrus.Infof("loaded config file: %s", viper.ConfigFileUsed())

	ConfigInfo.Server.Addr = viper.GetString("server.addr")
	ConfigInfo.Server.Env = viper.GetString("server.env")

	ConfigInfo.Mysql.Addr = viper.GetString("mysql.addr")
	ConfigInfo.Mysql.Database = viper.GetString("mysql.database")
	ConfigInfo.Mysql.Username = viper.GetString("mysql.username")
	ConfigInfo.Mysql.Password = viper.GetString("mysql.password")
	ConfigInfo.Mysql.Charset = viper.GetString("mysql.charset")

	ConfigInfo.Redis.Addr = viper.GetString("redis.addr")
	ConfigInfo.Redis.Password = viper.GetString("redis.password")
	ConfigInfo.Redis.DB = viper.GetInt("redis.db")

	ConfigInfo.Minio.Endpoint = viper.GetString("minio.endpoint")
	ConfigInfo.Minio.AccessKey = viper.GetString("minio.access_key")
	ConfigInfo.Minio.SecretKey = viper.GetString("minio.secret_key")
	ConfigInfo.Minio.UseSSL = viper.GetBool("minio.use_ssl")
	ConfigInfo.Minio.VideoBucket = viper.GetString("minio.video_bucket")
	ConfigInfo.Minio.ImageBucket = viper.GetString("minio.image_bucket")
	ConfigInfo.Minio.PublicBaseURL = viper.GetString("minio.public_base_url")

	ConfigInfo.Jwt.Secret = viper.GetString("jwt.secret")
	ConfigInfo.Jwt.Realm = viper.GetString("jwt.realm")

	logrus.Infof("config loaded - mysql: %s@%s/%s, redis: %s, minio: %s",
		ConfigInfo.Mysql.Username, ConfigInfo.Mysql.Addr, ConfigInfo.Mysql.Database,
		ConfigInfo.Redis.Addr, ConfigInfo.Minio.Endpoint)
}

// IsProduction gates stack traces in error responses.
func IsProduction() bool {
	return ConfigInfo.Server.Env == "production"
}
