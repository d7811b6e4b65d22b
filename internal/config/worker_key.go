package config

type WorkerKeyStruct struct {
	ExamResultAlertsQueue string
}

var WorkerKey = &WorkerKeyStruct{
	ExamResultAlertsQueue: "exam_result_alerts_queue",
}
