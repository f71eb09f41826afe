package conf

import (
	"github.com/spf13/viper"
)

// setDefaultConfig sets default values for each configuration parameter.
func setDefaultConfig() {
	viper.SetDefault("debug", false)

	viper.SetDefault("bank.prefix", "")
	viper.SetDefault("bank.verifyonload", false)

	viper.SetDefault("log.enabled", false)
	viper.SetDefault("log.path", "soundbank.log")
	viper.SetDefault("log.rotation", RotationDaily)
	viper.SetDefault("log.maxsizemb", 100)

	viper.SetDefault("metrics.enabled", false)
}
