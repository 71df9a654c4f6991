// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package jobctx resolves the identity of the cluster scheduler job
// the process is running under, if any. LSB_JOBID is set by LSF and
// JOB_ID by UGER/GridEngine; LSB_JOBINDEX carries the job-array index.
// The identity is used only to make temp-directory names traceable on
// shared clusters.
package jobctx

import "os"

// idVars are checked in order; the first one present wins.
var idVars = []string{"LSB_JOBID", "JOB_ID"}

const indexVar = "LSB_JOBINDEX"

// Job is the identity of a scheduler job.
type Job struct {
	ID    string
	Index string
}

// Scheduled reports whether the process is running under a recognized
// cluster scheduler.
func (j Job) Scheduled() bool {
	return j.ID != ""
}

// FromEnv resolves the job identity from the environment. When no
// scheduler variable is present the zero Job is returned. A missing
// job-array index defaults to "0".
func FromEnv() Job {
	for _, k := range idVars {
		v, ok := os.LookupEnv(k)
		if !ok {
			continue
		}

		idx := os.Getenv(indexVar)
		if idx == "" {
			idx = "0"
		}

		return Job{ID: v, Index: idx}
	}

	return Job{}
}
