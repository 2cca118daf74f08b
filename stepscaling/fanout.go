package stepscaling

// Fanout wires every ladder to the alarms and actions of all factories. Each
// factory's alarm triggers that same factory's action.
func Fanout(factories ...SinkFactory) SinkFactory {
	return fanoutFactory(factories)
}

type fanoutFactory []SinkFactory

func (f fanoutFactory) NewAlarm(spec AlarmSpec) AlarmSink {
	alarms := make(fanoutAlarm, len(f))
	for i, factory := range f {
		alarms[i] = factory.NewAlarm(spec)
	}
	return alarms
}

func (f fanoutFactory) NewAction(spec ActionSpec) ActionSink {
	actions := make(fanoutAction, len(f))
	for i, factory := range f {
		actions[i] = factory.NewAction(spec)
	}
	return actions
}

type fanoutAlarm []AlarmSink

func (a fanoutAlarm) SetThreshold(v float64) {
	for _, alarm := range a {
		alarm.SetThreshold(v)
	}
}

func (a fanoutAlarm) SetComparison(c Comparison) {
	for _, alarm := range a {
		alarm.SetComparison(c)
	}
}

func (a fanoutAlarm) OnTrigger(action ActionSink) {
	actions, ok := action.(fanoutAction)
	if !ok || len(actions) != len(a) {
		for _, alarm := range a {
			alarm.OnTrigger(action)
		}
		return
	}
	for i, alarm := range a {
		alarm.OnTrigger(actions[i])
	}
}

type fanoutAction []ActionSink

func (a fanoutAction) AddAdjustment(r AdjustmentRecord) {
	for _, action := range a {
		action.AddAdjustment(r)
	}
}
