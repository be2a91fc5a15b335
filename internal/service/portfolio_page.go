package service

const portfolioPageTemplate = "portfolio_page"

const portfolioPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{ settings.site_title | default: hero.title | escape }}</title>
<meta name="description" content="{{ settings.site_description | escape }}">
<meta name="keywords" content="{{ settings.meta_keywords | escape }}">
</head>
<body>
{% if hero %}<header id="hero">
{% if hero.image_url != "" %}<img src="{{ hero.image_url | escape }}" alt="{{ hero.title | escape }}">{% else %}<div class="avatar">{{ hero.title | initials }}</div>{% endif %}
<h1>{{ hero.title | escape }}</h1>
<h2>{{ hero.subtitle | escape }}</h2>
<p>{{ hero.description | escape }}</p>
{% for badge in hero.badges %}<span class="badge">{{ badge | escape }}</span>{% endfor %}
{% if hero.cta_text != "" %}<a class="cta" href="{{ hero.cta_link | escape }}">{{ hero.cta_text | escape }}</a>{% endif %}
{% if settings.resume_pdf_url != "" %}<a class="resume" href="{{ settings.resume_pdf_url | escape }}">Resume</a>{% endif %}
</header>{% endif %}
<section id="skills">
<h2>Skills</h2>
{% for group in skill_groups %}<div class="skill-group">
<h3>{{ group.category }}</h3>
<ul>{% for skill in group.skills %}<li>{{ skill.name | escape }}</li>{% endfor %}</ul>
</div>
{% endfor %}</section>
<section id="projects">
<h2>Projects</h2>
{% for project in projects %}<article class="project">
{% if project.image_url %}<img src="{{ project.image_url | escape }}" alt="{{ project.title | escape }}">{% endif %}
<h3>{{ project.title | escape }}</h3>
<p>{{ project.description | escape }}</p>
<p class="tech">{{ project.tech_stack | join: ", " | escape }}</p>
{% if project.github_url %}<a href="{{ project.github_url | escape }}">Code</a>{% endif %}
{% if project.live_url %}<a href="{{ project.live_url | escape }}">Live</a>{% endif %}
</article>
{% endfor %}</section>
<section id="resume">
<h2>Experience</h2>
{% for item in work %}<div class="timeline-item"><h3>{{ item.title | escape }}</h3><p>{{ item.organization | escape }} &middot; {{ item.start_date | escape }} - {{ item.end_date | default: "Present" | escape }}</p>{% if item.description %}<p>{{ item.description | escape }}</p>{% endif %}</div>
{% endfor %}<h2>Education</h2>
{% for item in education %}<div class="timeline-item"><h3>{{ item.title | escape }}</h3><p>{{ item.organization | escape }} &middot; {{ item.start_date | escape }} - {{ item.end_date | default: "Present" | escape }}</p></div>
{% endfor %}</section>
<footer id="contact">
{% for link in social_links %}{% if link.url != "" %}<a href="{{ link.url | escape }}" rel="me">{{ link.platform | escape }}</a>{% endif %}{% endfor %}
<p>{{ settings.footer_text | escape }}</p>
</footer>
</body>
</html>
`
