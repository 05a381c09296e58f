package logs

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want message
	}{
		{
			name: "death with location clause",
			msg:  "☠ Steve was slain by Zombie (Extra: World:world, X:100, Y:64, Z:-200)",
			want: deathMsg{name: "Steve", cause: "was slain by Zombie"},
		},
		{
			name: "death without location clause is not a death",
			msg:  "☠ Steve was slain by Zombie",
			want: nil,
		},
		{
			name: "death with malformed location clause is not a death",
			msg:  "☠ Steve fell (Extra: World:world, X:abc, Y:64, Z:1)",
			want: nil,
		},
		{
			name: "join",
			msg:  "Steve joined the game",
			want: joinMsg{name: "Steve"},
		},
		{
			name: "leave",
			msg:  "Steve left the game",
			want: leaveMsg{name: "Steve"},
		},
		{
			name: "game over without address",
			msg:  "Steve lost connection: Game Over!",
			want: leaveMsg{name: "Steve", disconnect: true},
		},
		{
			name: "game over with address stripped",
			msg:  "Steve (/192.0.2.1:54321) lost connection: Game Over!",
			want: leaveMsg{name: "Steve", disconnect: true},
		},
		{
			name: "ordinary disconnect is not a leave",
			msg:  "Steve lost connection: Disconnected",
			want: nil,
		},
		{
			name: "advancement",
			msg:  "Alex has made the advancement [Hot Stuff]",
			want: advancementMsg{name: "Alex", advancement: "Hot Stuff"},
		},
		{
			name: "chat",
			msg:  "Alex » anyone near spawn?",
			want: chatMsg{speaker: "Alex", text: "anyone near spawn?"},
		},
		{
			name: "chat with unsecured prefix",
			msg:  "[Not Secure] Alex » anyone near spawn?",
			want: chatMsg{speaker: "Alex", text: "anyone near spawn?"},
		},
		{
			name: "server noise",
			msg:  "Saving chunks for level 'ServerLevel[world]'/minecraft:overworld",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.msg)
			if got != tt.want {
				t.Errorf("classify(%q) = %#v, want %#v", tt.msg, got, tt.want)
			}
		})
	}
}
