package cmd

import (
	"time"

	"github.com/foomo/storesweep/pkg/sweep"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func logLevelFlag(v *viper.Viper) string {
	return v.GetString("log.level")
}

func addLogLevelFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("log-level", "info", "log level")
	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = v.BindEnv("log.level", "LOG_LEVEL")
}

func logFormatFlag(v *viper.Viper) string {
	return v.GetString("log.format")
}

func addLogFormatFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("log-format", "json", "log format")
	_ = v.BindPFlag("log.format", flags.Lookup("log-format"))
	_ = v.BindEnv("log.format", "LOG_FORMAT")
}

func storageTypeFlag(v *viper.Viper) string {
	return v.GetString("storage.type")
}

func addStorageTypeFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("storage-type", "filesystem", "Storage backend to sweep (filesystem, blob)")
	_ = v.BindPFlag("storage.type", flags.Lookup("storage-type"))
	_ = v.BindEnv("storage.type", "STORESWEEP_STORAGE_TYPE")
}

func storageBlobBucketFlag(v *viper.Viper) string {
	return v.GetString("storage.blob.bucket")
}

func addStorageBlobBucketFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("storage-blob-bucket", "", "Bucket URL for blob storage (gs://, s3://, azblob://)")
	_ = v.BindPFlag("storage.blob.bucket", flags.Lookup("storage-blob-bucket"))
	_ = v.BindEnv("storage.blob.bucket", "STORESWEEP_STORAGE_BLOB_BUCKET")
}

func storageBlobPrefixFlag(v *viper.Viper) string {
	return v.GetString("storage.blob.prefix")
}

func addStorageBlobPrefixFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("storage-blob-prefix", "", "Optional key prefix for blob storage")
	_ = v.BindPFlag("storage.blob.prefix", flags.Lookup("storage-blob-prefix"))
	_ = v.BindEnv("storage.blob.prefix", "STORESWEEP_STORAGE_BLOB_PREFIX")
}

func storageDirFlag(v *viper.Viper) string {
	return v.GetString("storage.dir")
}

func addStorageDirFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("storage-dir", "/var/lib/storesweep", "Directory for filesystem storage")
	_ = v.BindPFlag("storage.dir", flags.Lookup("storage-dir"))
	_ = v.BindEnv("storage.dir", "STORESWEEP_STORAGE_DIR")
}

func batchSizeFlag(v *viper.Viper) int {
	return v.GetInt("batch_size")
}

func addBatchSizeFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Int("batch-size", sweep.DefaultBatchSize, "Number of deletes per page")
	_ = v.BindPFlag("batch_size", flags.Lookup("batch-size"))
	_ = v.BindEnv("batch_size", "STORESWEEP_BATCH_SIZE")
}

func parallelFlag(v *viper.Viper) bool {
	return v.GetBool("parallel")
}

func addParallelFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Bool("parallel", false, "If true, deletes within a page run concurrently")
	_ = v.BindPFlag("parallel", flags.Lookup("parallel"))
	_ = v.BindEnv("parallel", "STORESWEEP_PARALLEL")
}

func intervalFlag(v *viper.Viper) time.Duration {
	return v.GetDuration("interval")
}

func addIntervalFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Duration("interval", time.Minute, "Specifies the sweep interval for the daemon")
	_ = v.BindPFlag("interval", flags.Lookup("interval"))
	_ = v.BindEnv("interval", "STORESWEEP_INTERVAL")
}

func serviceHealthzEnabledFlag(v *viper.Viper) bool {
	return v.GetBool("service.healthz.enabled")
}

func addServiceHealthzEnabledFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Bool("service-healthz-enabled", false, "Enable healthz service")
	_ = v.BindPFlag("service.healthz.enabled", flags.Lookup("service-healthz-enabled"))
}

func servicePrometheusEnabledFlag(v *viper.Viper) bool {
	return v.GetBool("service.prometheus.enabled")
}

func addServicePrometheusEnabledFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Bool("service-prometheus-enabled", false, "Enable prometheus service")
	_ = v.BindPFlag("service.prometheus.enabled", flags.Lookup("service-prometheus-enabled"))
}
