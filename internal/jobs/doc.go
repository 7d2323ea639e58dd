// Package jobs submits a Spark JAR job to a Databricks workspace: it creates
// a cluster configured for managed-identity access to the JAR storage
// account, creates a job bound to that cluster, and triggers a run.
//
// Submission is expressed as a provisioning pipeline without rollback, so it
// shares the step logging, metrics and timeouts of the other pipelines. The
// first failing call stops the submission.
package jobs
