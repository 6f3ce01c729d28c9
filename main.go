package main

import (
	"flag"
	"fmt"

	"github.com/TianqiuHuang/connection-config/pkg/connection"
	"k8s.io/klog"
)

var config string
var printDSN bool

func init() {
	flag.StringVar(&config, "config", "./config/config.json", "connection config file")
	flag.BoolVar(&printDSN, "dsn", false, "print the driver connection string instead of the config")
}

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	klog.Infof("reading connection config from %s", config)
	cfg, err := connection.ReadConnectionConfig(config)
	if err != nil {
		klog.Fatal(err)
	}
	klog.V(2).Infof("loaded connection config: %s", cfg)

	if !printDSN {
		fmt.Println(cfg)
		return
	}

	dsn, err := connection.DSN(cfg)
	if err != nil {
		klog.Fatal(err)
	}
	fmt.Println(dsn)
}
