package metrics

// IncrementUserRegistered records a successful registration
func (m *Metrics) IncrementUserRegistered() {
	m.safeExecute("IncrementUserRegistered", func() {
		m.UserRegisteredTotal.Inc()
	})
}

// RecordLogin records a login attempt with its result ("success" or "failure")
func (m *Metrics) RecordLogin(result string) {
	m.safeExecute("RecordLogin", func() {
		m.LoginsTotal.WithLabelValues(result).Inc()
	})
}

// IncrementBoardCreated records a board creation event
func (m *Metrics) IncrementBoardCreated() {
	m.safeExecute("IncrementBoardCreated", func() {
		m.BoardCreatedTotal.Inc()
	})
}

// IncrementTaskCreated records a task creation event
func (m *Metrics) IncrementTaskCreated() {
	m.safeExecute("IncrementTaskCreated", func() {
		m.TaskCreatedTotal.Inc()
	})
}

// IncrementCommentCreated records a comment creation event
func (m *Metrics) IncrementCommentCreated() {
	m.safeExecute("IncrementCommentCreated", func() {
		m.CommentCreatedTotal.Inc()
	})
}

// AddTokensCleaned records tokens removed by the cleanup job
func (m *Metrics) AddTokensCleaned(count int64) {
	m.safeExecute("AddTokensCleaned", func() {
		m.TokensCleanedTotal.Add(float64(count))
	})
}

// SetUsersTotal sets the registered users gauge
func (m *Metrics) SetUsersTotal(count int64) {
	m.safeExecute("SetUsersTotal", func() {
		m.UsersTotal.Set(float64(count))
	})
}

// SetBoardsTotal sets the boards gauge
func (m *Metrics) SetBoardsTotal(count int64) {
	m.safeExecute("SetBoardsTotal", func() {
		m.BoardsTotal.Set(float64(count))
	})
}

// SetTasksTotal sets the tasks gauge
func (m *Metrics) SetTasksTotal(count int64) {
	m.safeExecute("SetTasksTotal", func() {
		m.TasksTotal.Set(float64(count))
	})
}
