package jobs

import (
	"github.com/imamik/adbvnet/internal/config"
	"github.com/imamik/adbvnet/internal/platform/databricks"
)

const (
	msiTokenProvider = "org.apache.hadoop.fs.azurebfs.oauth2.MsiTokenProvider"
	authTypeOAuth    = "OAuth"
)

// SparkConf returns the cluster configuration granting access to the JAR
// storage account through the workspace-managed identity.
func SparkConf(storageAccount, clientID, tenantID string) map[string]string {
	host := storageAccount + ".dfs.core.windows.net"
	return map[string]string{
		"spark.hadoop.fs.azure.account.oauth2.client.id":            clientID,
		"spark.hadoop.fs.azure.account.oauth.provider.type." + host: msiTokenProvider,
		"spark.hadoop.fs.azure.account.oauth2.msi.tenant":           tenantID,
		"spark.hadoop.fs.azure.account.auth.type." + host:           authTypeOAuth,
	}
}

// ClusterSpec returns the cluster create request for cfg.
func ClusterSpec(cfg *config.Config, clientID string) databricks.ClusterSpec {
	c := cfg.Jobs.Cluster
	return databricks.ClusterSpec{
		ClusterName:            c.Name,
		SparkVersion:           c.SparkVersion,
		NodeTypeID:             c.NodeType,
		NumWorkers:             c.Workers,
		AutoterminationMinutes: c.AutoTerminationMinutes,
		SparkConf:              SparkConf(cfg.Jobs.JarStorageAccount, clientID, cfg.TenantID),
	}
}

// JobSpec returns the job create request binding the JAR task to clusterID.
func JobSpec(cfg *config.Config, clusterID string) databricks.JobSpec {
	j := cfg.Jobs.Job
	return databricks.JobSpec{
		Name: j.Name,
		Tasks: []databricks.Task{{
			TaskKey:           j.TaskKey,
			Description:       j.Description,
			ExistingClusterID: clusterID,
			SparkJarTask:      &databricks.SparkJarTask{MainClassName: j.MainClass},
			Libraries:         []databricks.Library{{Jar: j.Jar}},
		}},
	}
}
